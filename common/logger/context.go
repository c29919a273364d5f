package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields carries request-scoped identifiers that the TraceHandler
// attaches to every log record emitted under the same context.
type LogFields struct {
	UserID        *int64
	ProjectID     *int64
	SuggestionID  *int64
	DesignVersion *int32
	RuleKey       *string
	Component     string
}

func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)

	if fields.UserID != nil {
		existing.UserID = fields.UserID
	}
	if fields.ProjectID != nil {
		existing.ProjectID = fields.ProjectID
	}
	if fields.SuggestionID != nil {
		existing.SuggestionID = fields.SuggestionID
	}
	if fields.DesignVersion != nil {
		existing.DesignVersion = fields.DesignVersion
	}
	if fields.RuleKey != nil {
		existing.RuleKey = fields.RuleKey
	}
	if fields.Component != "" {
		existing.Component = fields.Component
	}

	return context.WithValue(ctx, logFieldsKey, existing)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}
