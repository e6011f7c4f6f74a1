package api

import "keyshop/internal/pkg/errs"

// Raised when a route behind RequireAuth runs without auth context; that is
// a wiring bug, not a client error.
var errNoAuthContext = errs.New("authenticated user missing from context")
