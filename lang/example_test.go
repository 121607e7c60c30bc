package lang_test

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lacycat/langcat/lang"
)

func Example() {
	doc, err := lang.ParseString(context.Background(), `
$settings$:
    *volume* -> 75
    *fullscreen* -> True
$tags$:
    *names* -> ["a", "b"]
`)
	if err != nil {
		panic(err)
	}

	v, ok, _ := doc.Lookup("settings.volume")
	fmt.Println(v.Encode(), v.Kind(), ok)

	_, ok, _ = doc.Lookup("settings.missing")
	fmt.Println(ok)

	doc.AddKey("tags", "count", lang.Integer(2))
	fmt.Print(doc)
	// Output:
	// 75 integer true
	// false
	// $settings$:
	//     *volume* -> 75
	//     *fullscreen* -> True
	// $tags$:
	//     *names* -> ["a", "b"]
	//     *count* -> 2
}

func ExampleDecode() {
	for _, raw := range []string{`"hi"`, "True", "42", "2.0", `["a", 1.5]`, "4x"} {
		v, err := lang.Decode(raw)
		if err != nil {
			fmt.Println(errors.Is(err, lang.ErrValueSyntax), err)

			continue
		}

		fmt.Println(v.Kind(), v.Encode())
	}
	// Output:
	// string "hi"
	// boolean True
	// integer 42
	// float 2.0
	// list ["a", 1.5]
	// true invalid integer value [value=4x]: strconv.ParseInt: parsing "4x": invalid syntax
}

func ExampleDocument_FormatJSON() {
	doc := lang.NewDocument()
	doc.AddKey("server", "port", lang.Integer(8080))
	doc.AddKey("server", "hosts", lang.NewList(lang.String("a"), lang.String("b")))

	if err := doc.FormatJSON(context.Background(), os.Stdout, 0); err != nil {
		panic(err)
	}
	// Output:
	// {"server":{"port":8080,"hosts":["a","b"]}}
}
