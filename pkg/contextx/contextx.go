package contextx

import (
	"context"
	"time"
)

type receiptTimeKey struct{}

type subjectKey struct{}

// WithReceiptTime records when the server received the request.
func WithReceiptTime(parent context.Context, rt time.Time) context.Context {
	return context.WithValue(parent, receiptTimeKey{}, rt)
}

func ReceiptTimeFromContext(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(receiptTimeKey{}).(time.Time)
	return t, ok
}

// WithSubject records the authenticated caller.
func WithSubject(parent context.Context, subject string) context.Context {
	return context.WithValue(parent, subjectKey{}, subject)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok && s != ""
}
