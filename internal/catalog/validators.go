/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"github.com/suparena/entitymanager/validation"
)

// Validators returns the train validators: struct tags on create and update,
// and page filters bounded by maxLimit.
func Validators(maxLimit int) validation.Factory[Train] {
	return validation.NewFactory[Train](
		validation.NewStruct[*Train](nil),
		validation.NewStruct[*Train](nil),
		validation.PageFilter(maxLimit),
	)
}
