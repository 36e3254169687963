package iso8583

import "fmt"

// validateTypeConfig checks structural consistency between a message
// type's template fields and its parse schema: a fixed kind must declare a
// positive length, and a template field's kind/length must match the
// schema entry for the same index when both are present. This is syntactic
// consistency only — it never interprets what a field means, per the
// codec's non-goal on business-rule validation.
func validateTypeConfig(msgType uint16, tc typeConfig) error {
	for i, info := range tc.schema {
		if info.Kind.IsFixed() {
			n, hasIntrinsic := info.Kind.intrinsicLen()
			if hasIntrinsic {
				if info.DeclaredLength != 0 && info.DeclaredLength != n {
					return &ConfigurationError{Type: msgType, Field: i, Reason: fmt.Sprintf("declared length %d conflicts with %s's intrinsic length %d", info.DeclaredLength, info.Kind, n)}
				}
			} else if info.DeclaredLength <= 0 {
				return &ConfigurationError{Type: msgType, Field: i, Reason: fmt.Sprintf("fixed kind %s requires a positive declared length", info.Kind)}
			}
		}
	}
	if tc.template == nil {
		return nil
	}
	for i, f := range tc.template.fields {
		info, ok := tc.schema[i]
		if !ok {
			continue // a template may carry fields the parse schema never expects inbound
		}
		if f.FieldKind() != info.Kind {
			return &ConfigurationError{Type: msgType, Field: i, Reason: fmt.Sprintf("template field kind %s does not match schema kind %s", f.FieldKind(), info.Kind)}
		}
		if info.Kind.IsFixed() {
			got, want := f.DeclaredLength(), info.DeclaredLength
			if n, hasIntrinsic := info.Kind.intrinsicLen(); hasIntrinsic {
				want = n
				if got == 0 {
					got = n
				}
			}
			if got != want {
				return &ConfigurationError{Type: msgType, Field: i, Reason: fmt.Sprintf("template field declared length %d does not match schema length %d", got, want)}
			}
		}
	}
	return nil
}
