package cache

import "errors"

/*
ErrBatchSize reports a fetch callback that broke its contract by returning a
number of values different from the number of missing keys it was given.

The pairing of keys to values is positional, so a short or long result
cannot be applied safely: truncating or padding would silently attach values
to the wrong keys. The cache refuses the whole result instead and leaves its
contents untouched.

Errors wrapping ErrBatchSize can be detected with errors.Is.
*/
var ErrBatchSize = errors.New("cache: fetch returned wrong number of values")
