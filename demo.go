package main

import "strings"

// ─── Demo ────────────────────────────────────────────────────────────────────

// demoContent is the sample list loaded by --demo. Nothing is written to
// disk in demo mode; edits live only in memory.
var demoContent = strings.Join([]string{
	"1 groceries",
	"  - eggs",
	"  + oat milk",
	"  - 4 blueberries",
	"- call the landlord about the radiator",
	"+ book dentist appointment",
	"2 reading list",
	"  + The Mythical Man-Month",
	"  - A Philosophy of Software Design",
	"weekend",
	"  - clean out the garage",
	"  - 5 plan the bike trip",
	"  + sharpen kitchen knives",
	"- renew passport",
}, "\n")

func demoList() todoList {
	items, err := decodeList(demoContent)
	if err != nil {
		// embedded data is compile-time constant
		panic("demo content: " + err.Error())
	}
	return items
}
