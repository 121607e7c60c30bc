// Package lang implements LangCat, a line-oriented configuration format of
// named groups holding typed key-value pairs.
//
// # Grammar
//
//	Document  → GroupBlock*
//	GroupBlock → '$' name '$:' NEWLINE KeyLine*
//	KeyLine   → '    ' '*' key '*' ' -> ' Value NEWLINE
//	Value     → '"' text '"' | 'True' | 'False' | Float | Integer | List
//	List      → '[' (Value (', ' Value)*)? ']'
//
// Lines are trimmed before they are matched, so indentation is optional on
// input. Lines that match neither form, and key lines before the first group
// header, are ignored. Group names are unique within a document and keys
// are unique within a group; a duplicate is a parse error.
//
// # Example
//
//	$settings$:
//	    *volume* -> 75
//	    *fullscreen* -> True
//	    *gamma* -> 2.2
//	$tags$:
//	    *names* -> ["a", "b"]
//
// # Values
//
// Strings are written between double quotes with no escape sequences.
// A text containing a '.' is always a float, so 2.0 never decodes as an
// integer. List elements are separated at commas; [WithNestedLists] makes
// the splitter skip commas inside nested lists and strings.
//
// # Lookup
//
// [Document.Lookup] takes "group.key" and [LoadValue] takes
// "file.group.key", where file names a document file with the [FileExt]
// extension. A missing group or key is not an error.
package lang
