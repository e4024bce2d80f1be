// SPDX-License-Identifier: MIT

// Package supercell grows a structure until it holds a minimum number of
// sites, so that random species exchange has enough sites to be
// statistically meaningful.
//
// Policy: while the site count is below the threshold, double the
// structure along its currently shortest axis. The shortest axis is
// re-read from the structure on every iteration, so growth alternates
// between axes instead of running away along one of them. Ties go to a,
// then b, then c.
//
// Example (a=1, b=2, c=3, 2 sites, threshold 5):
//
//	iter 1: a shortest → [2,1,1] → a=2, 4 sites
//	iter 2: a,b tie    → [2,1,1] → a=4, 8 sites (first minimum wins)
package supercell
