// Package noexit запрещает прямой вызов os.Exit в функции main пакета main.
// Завершение с кодом выносится в отдельную функцию, чтобы отложенные
// вызовы (zap Sync, остановка серверов) успевали отработать.
package noexit

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const message = "прямой вызов os.Exit в main запрещён"

// Analyzer проверяет тело main, включая вложенные функциональные литералы.
var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает вызывать os.Exit прямо в функции main пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if callee := typeutil.StaticCallee(pass.TypesInfo, call); callee != nil && callee.FullName() == "os.Exit" {
				pass.Reportf(call.Pos(), message)
			}
			return true
		})
	})
	return nil, nil
}
