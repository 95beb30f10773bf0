package controls

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// StrictSanitizer returns a shared policy that strips all markup. Pass it to
// WithSanitizer for free-text inputs; entities the policy escapes are decoded
// again so plain text is stored as written.
func StrictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
