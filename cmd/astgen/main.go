package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var nodes = map[string][]string{
	"Expr": {
		"Const: value float64",
		"String: value string",
		"Variable: name *token",
		"Binary: left expr, operator *token, right expr",
	},
	"Stmt": {
		"Assign: name *token, value expr",
		"Print: keyword *token, value expr",
		"If: keyword *token, condition expr, thenBranch stmtList, elseBranch stmtList",
		"While: keyword *token, condition expr, body stmtList",
		"For: keyword *token, initializer stmt, condition expr, increment stmt, body stmtList",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astgen Expr|Stmt")
		os.Exit(2)
	}
	types, ok := nodes[os.Args[1]]
	if !ok {
		logrus.WithField("base", os.Args[1]).Fatal("unknown node family")
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		logrus.WithError(err).Fatal("generated code does not parse")
	}
	fmt.Print(string(out))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by astgen; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
