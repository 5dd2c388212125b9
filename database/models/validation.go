// Copyright (C) 2025 the IntelliSIEM authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrValidation is the sentinel wrapped by every required-field violation.
// Callers can errors.Is against it to distinguish a rejected payload from a
// store-level failure.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

func validationError(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return errors.Wrap(ErrValidation, err.Error())
	}
	return err
}
