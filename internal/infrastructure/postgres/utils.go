package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isUniqueViolation verifica se o erro é uma violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

var semDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizarPesquisa remove diacríticos e baixa o termo de pesquisa, para que
// "betão" e "betao" encontrem o mesmo registo. As colunas pesquisadas guardam
// uma versão normalizada pelo mesmo processo.
func normalizarPesquisa(q string) string {
	normalizado, _, err := transform.String(semDiacriticos, q)
	if err != nil {
		normalizado = q
	}
	return strings.ToLower(strings.TrimSpace(normalizado))
}
