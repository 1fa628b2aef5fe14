// Package fuzztests houses Go fuzz harnesses for the report decoders and the
// formatters. They guard against panics on arbitrary reports and check that
// every decoded report groups into a consistent result.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
