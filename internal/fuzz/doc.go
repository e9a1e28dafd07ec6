// Package fuzztests houses Go fuzz harnesses for the fragment parser.
//
// Назначение: прогонять произвольные фрагменты через history.Parse и
// проверять, что разбор тотален, не зависает и соблюдает законы токенов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/history, internal/diag, internal/testkit,
// internal/driver (чтение testdata).
package fuzztests
