package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the chain recognises.
const (
	invalidTextRepresentationCode = "22P02"
	numericValueOutOfRangeCode    = "22003"
	foreignKeyViolationCode       = "23503"
)

const (
	MsgBadRequest       = "Bad request!"
	MsgReferenceMissing = "Article ID not found!"
	MsgInternal         = "Internal server error!"
)

// Response is what a rule decided to send.
type Response struct {
	Kind   Kind
	Status int
	Msg    string
}

// Rule is one link of the classification chain.
type Rule struct {
	Name    string
	Match   func(error) bool
	Respond func(error) Response
}

// Chain is evaluated in order; the first matching rule wins.
var Chain = []Rule{
	{
		Name:  "store-syntax",
		Match: IsInvalidSyntax,
		Respond: func(error) Response {
			return Response{Kind: KindStoreSyntax, Status: http.StatusBadRequest, Msg: MsgBadRequest}
		},
	},
	{
		Name:  "store-integrity",
		Match: IsForeignKeyViolation,
		Respond: func(error) Response {
			return Response{Kind: KindStoreIntegrity, Status: http.StatusNotFound, Msg: MsgReferenceMissing}
		},
	},
	{
		Name: "application",
		Match: func(err error) bool {
			var appErr *Error
			return errors.As(err, &appErr) && appErr.Status != 0 && appErr.Msg != ""
		},
		Respond: func(err error) Response {
			var appErr *Error
			errors.As(err, &appErr)
			return Response{Kind: appErr.Kind, Status: appErr.Status, Msg: appErr.Msg}
		},
	},
}

// Resolve runs err through Chain. Errors no rule claims become a 500.
func Resolve(err error) Response {
	for _, rule := range Chain {
		if rule.Match(err) {
			return rule.Respond(err)
		}
	}
	return Response{Kind: KindUnclassified, Status: http.StatusInternalServerError, Msg: MsgInternal}
}

// IsInvalidSyntax matches malformed values rejected by the store or by local
// parsing.
func IsInvalidSyntax(err error) bool {
	if errors.Is(err, ErrInvalidInput) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == invalidTextRepresentationCode || pgErr.Code == numericValueOutOfRangeCode
}

// IsForeignKeyViolation matches a reference to a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
