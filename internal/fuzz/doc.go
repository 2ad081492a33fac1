// Package fuzztests houses Go fuzz harnesses that exercise the checker
// front end (source -> lexer -> parser -> rules). Its goal is to smoke test
// robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер и
// driver.AnalyzeFile.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
