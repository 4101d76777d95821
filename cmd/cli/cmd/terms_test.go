package cmd

import (
	"strings"
	"testing"
)

func TestRunTermsReportsParseFailures(t *testing.T) {
	cfgFile, tzFlag, termsMonths = "", "UTC", false
	t.Cleanup(func() { tzFlag = "" })

	if err := runTerms(termsCmd, []string{"Cal22", "Q1,23[Europe/Berlin]"}); err != nil {
		t.Fatalf("valid terms: %v", err)
	}

	err := runTerms(termsCmd, []string{"Cal22", "Foo22", "Cal2101"})
	if err == nil {
		t.Fatal("expected an error for unparseable terms")
	}
	if !strings.Contains(err.Error(), "2 of 3") || !strings.Contains(err.Error(), "Foo22") {
		t.Fatalf("unexpected error %v", err)
	}
}
