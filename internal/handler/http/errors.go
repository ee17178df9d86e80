// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidProductID is returned for a product id that is not an integer.
var ErrInvalidProductID = errors.New("product id must be an integer")
