// Package calculator provides an arithmetic tool for the catalog.
package calculator
