package domain

import "fmt"

// UnrecognizedEventError reports a trigger event that matched no
// classification rule. The raw event is carried for diagnostics.
type UnrecognizedEventError struct {
	Event []byte
}

func (e *UnrecognizedEventError) Error() string {
	return fmt.Sprintf("could not determine a report spec for event: %s", e.Event)
}

// RegionParseError reports an alarm ARN that contains no known region.
type RegionParseError struct {
	ARN string
}

func (e *RegionParseError) Error() string {
	return fmt.Sprintf("failed to parse region from alarm arn %q", e.ARN)
}

// InvalidSpecError reports the first validation rule a report spec violates.
type InvalidSpecError struct {
	Field  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid report spec: %s: %s", e.Field, e.Reason)
}

// BillingParseError reports structural corruption in a billing CSV export.
type BillingParseError struct {
	Err error
}

func (e *BillingParseError) Error() string {
	return fmt.Sprintf("failed to parse billing report csv: %v", e.Err)
}

func (e *BillingParseError) Unwrap() error {
	return e.Err
}

// PublishError wraps a channel API failure during message send or
// attachment upload.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish report to slack channel: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
