// Package rules implements the fixed style rule set.
//
// Rules come in three families:
//
//   - line rules (S001–S005, S007–S009) look at one raw line at a time;
//   - the blank-run rule (S006) scans the whole line sequence once;
//   - tree rules (S010–S012) walk the parsed module.
//
// Rules never fail: a violation is a value, not an error.
package rules
