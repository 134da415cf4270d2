// Package barolog reads barometric pressure logs written by the BMP085 logger
// and provides the small numeric helpers used to line up typhoon passages.
//
// # File formats
//
// Both logger generations write header-less comma-separated rows. Only two
// columns matter:
//
//	column 0: time
//	column 2: pressure in pascal
//
// Column 1 (temperature) and any further columns are not used, but every
// cell must still be numeric: a row that is not a clean numeric table row
// is malformed. Lines starting with '#' are comments.
//
// The 2013 logger stores time as epoch-like seconds ([FormatEpochSeconds]).
// The 2015 logger stores a naive timestamp such as
// "2015-08-07 19:05:17.123456" ([FormatTimestamp]); it is read as UTC and
// converted to fractional Unix seconds. Only differences between rows are
// ever used, so the choice of zone does not change the result.
//
// # Alignment
//
// A passage is aligned on its pressure minimum: [MinIndex] picks the first
// row holding the lowest pressure and [Recenter] shifts the time axis so that
// row sits at zero.
package barolog
