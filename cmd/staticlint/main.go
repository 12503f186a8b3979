// Package main собирает multichecker для проекта.
//
// Состав:
//   - анализаторы из golang.org/x/tools/go/analysis/passes;
//   - все SA-проверки staticcheck;
//   - S1000 из simple и ST1005 из stylecheck;
//   - bodyclose (незакрытые тела ответов MyMemory-клиента);
//   - noexit, запрещающий os.Exit прямо в main.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/Totarae/TranslateApp/cmd/staticlint/noexit"
)

// extraChecks не-SA проверки, включаемые поимённо.
var extraChecks = map[string]bool{
	"S1000":  true, // select с одним case
	"ST1005": true, // текст ошибок
}

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		bodyclose.Analyzer,
		noexit.Analyzer,
	}

	for _, group := range [][]*lint.Analyzer{staticcheck.Analyzers, simple.Analyzers, stylecheck.Analyzers} {
		for _, a := range group {
			name := a.Analyzer.Name
			if strings.HasPrefix(name, "SA") || extraChecks[name] {
				list = append(list, a.Analyzer)
			}
		}
	}
	return list
}
