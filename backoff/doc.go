// Package backoff paces retries with a timer whose wait interval grows by
// squaring (2, 4, 16, 256, ... seconds) until a cumulative ceiling is reached.
//
// A Timer is owned by a single caller. Wait blocks for the current interval and
// IsDone reports, one step ahead, whether the next wait would overshoot the
// ceiling. Once done, Wait returns 0 without blocking.
package backoff
