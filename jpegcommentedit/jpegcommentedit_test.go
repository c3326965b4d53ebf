package main

import (
	"flag"
	"testing"
)

func TestFlagGivenEmptyValue(t *testing.T) {
	if flagGiven("comment") {
		t.Fatal("comment reported as given before being set")
	}
	if err := flag.CommandLine.Set("comment", ""); err != nil {
		t.Fatal(err)
	}
	if !flagGiven("comment") {
		t.Error("-comment with an empty value not reported as given")
	}
	if flagGiven("delete") {
		t.Error("unset -delete reported as given")
	}
}
