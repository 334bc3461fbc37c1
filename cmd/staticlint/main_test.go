package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestStdLogAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), StdLogAnalyzer, "a")
}

func TestOsExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitAnalyzer, "exitmain")
}
