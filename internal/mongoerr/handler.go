package mongoerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/hrms/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// E11000 duplicate key error collection: hrms_db.employees index: email_1 dup key: { email: "a@b.c" }
var duplicateKeyPattern = regexp.MustCompile(`collection: \S+?\.(\S+) index: (\S+) dup key`)

// ErrCode reports the Code for err: the Code of a wrapped *Error, or the
// classification of a raw driver error.
func ErrCode(err error) Code {
	var mongoErr *Error
	if errors.As(err, &mongoErr) {
		return mongoErr.Code
	}
	if converted := Convert(err); converted != nil {
		return converted.Code
	}
	return Other
}

// Convert classifies a driver error. It returns nil for a nil error and
// passes an already classified *Error through.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}

	var mongoErr *Error
	if errors.As(err, &mongoErr) {
		return mongoErr
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return &Error{Code: NoDocuments, Message: err.Error(), driverErr: err}

	case mongo.IsDuplicateKeyError(err):
		converted := &Error{Code: DuplicateKey, Message: err.Error(), driverErr: err}
		if m := duplicateKeyPattern.FindStringSubmatch(err.Error()); len(m) == 3 {
			converted.Collection = m[1]
			converted.Index = m[2]
			converted.Field = FieldFromIndex(m[2])
		}
		return converted

	case mongo.IsTimeout(err):
		return &Error{Code: Timeout, Message: err.Error(), driverErr: err}

	case mongo.IsNetworkError(err):
		return &Error{Code: Network, Message: err.Error(), driverErr: err}
	}

	return &Error{Code: Other, Message: err.Error(), driverErr: err}
}

// FieldFromIndex returns the leading key of a default-named index:
// "emp_id_1_date_1" -> "emp_id", "email_1" -> "email".
func FieldFromIndex(index string) string {
	parts := strings.Split(index, "_")
	var field []string
	for _, p := range parts {
		if p == "1" || p == "-1" {
			break
		}
		field = append(field, p)
	}
	return strings.Join(field, "_")
}

// generateErrorCode creates application error codes such as
// EMPLOYEE_ALREADY_EXISTS from the collection name.
func generateErrorCode(collection string, code Code) string {
	if collection == "" {
		collection = "RECORD"
	}

	domain := strings.ToUpper(collection)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch code {
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case NoDocuments:
		action = "NOT_FOUND"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// humanizeText converts snake_case into Title Case: "emp_id" -> "Emp Id".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// massNouns are collections whose singular reads badly ("an attendance"),
// so their documents are called records.
var massNouns = map[string]bool{
	"attendance": true,
}

func entityName(collection string) string {
	if collection == "" {
		return "record"
	}
	if massNouns[collection] {
		return strings.ToLower(humanizeText(collection)) + " record"
	}
	if strings.HasSuffix(collection, "s") && len(collection) > 1 {
		collection = collection[:len(collection)-1]
	}
	return strings.ToLower(humanizeText(collection))
}

// withArticle prefixes a noun with "A" or "An".
func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiou", rune(noun[0])) {
		return "An " + noun
	}
	return "A " + noun
}

// indexFields lists every key of a default-named index:
// "emp_id_1_date_1" -> ["emp_id", "date"].
func indexFields(index string) []string {
	var fields, current []string
	for _, p := range strings.Split(index, "_") {
		if p == "1" || p == "-1" {
			if len(current) > 0 {
				fields = append(fields, strings.Join(current, "_"))
			}
			current = nil
			continue
		}
		current = append(current, p)
	}
	return fields
}

func conflictMessage(e *Error) string {
	target := "identifier"
	if fields := indexFields(e.Index); len(fields) > 0 {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = humanizeText(f)
		}
		target = strings.Join(names, " and ")
	} else if e.Field != "" {
		target = humanizeText(e.Field)
	}
	return fmt.Sprintf("%s with this %s already exists", withArticle(entityName(e.Collection)), target)
}

// HandleError converts a driver error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - duplicate key: 409 naming the conflicting field when known
//   - no documents: 404
//   - anything else: opaque 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	converted := Convert(err)
	if converted == nil {
		return nil
	}

	switch converted.Code {
	case DuplicateKey:
		code := generateErrorCode(converted.Collection, converted.Code)
		return errs.NewConflictError(conflictMessage(converted), true, &code)

	case NoDocuments:
		return errs.NewNotFoundError("Resource not found", false, nil)

	default:
		return errs.NewInternalServerError()
	}
}
