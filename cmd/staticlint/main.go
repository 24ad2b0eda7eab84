// Package main запускает multichecker со статическими анализаторами проекта.
//
// Состав:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck
// - bodyclose (незакрытые тела HTTP ответов)
// - nilerr (возврат nil при ненулевой ошибке)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"
)

func main() {
	analyzers := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
	}

	// SA-анализаторы staticcheck
	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	analyzers = append(analyzers, bodyclose.Analyzer, nilerr.Analyzer)

	multichecker.Main(analyzers...)
}
