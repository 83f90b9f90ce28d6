package staticenum_test

import (
	"fmt"

	"git.imaxinacion.net/aibox/staticenum"
	"git.imaxinacion.net/aibox/staticenum/internal/sample"
)

func ExampleEnumerators() {
	for _, c := range staticenum.Enumerators[sample.Color]() {
		name, _ := staticenum.NameOf(c)
		fmt.Printf("%s: %d\n", name, c)
	}
	// Output:
	// RED: -12
	// GREEN: 7
	// BLUE: 15
}

func ExampleValueOf() {
	v, ok := staticenum.ValueOf[sample.Direction]("Left")
	fmt.Println(int(v), ok)

	_, ok = staticenum.ValueOf[sample.Direction]("Diagonal")
	fmt.Println(ok)
	// Output:
	// -119 true
	// false
}

func ExampleMake() {
	type Status int
	statuses := struct {
		Pending, Active, Closed Status
	}{1, 2, 3}

	m := staticenum.Make[Status](&statuses)
	r := staticenum.MustNew(staticenum.WithNamer(m.Namer()))

	fmt.Println(r.Names())
	fmt.Println(r.Name(2))
	// Output:
	// [Pending Active Closed]
	// Active
}
