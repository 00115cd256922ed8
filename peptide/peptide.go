/*
Package peptide carries the cross-linkable-peptide eligibility rules
from Xwalk/src/xwalk/constants/Constants.java
(CROSS_LINKABLE_PEPTIDE_SEQUENCE_EXPRESSION1/2), as a predicate only:
it classifies a peptide sequence, it does not cut a protein sequence
into peptides. Tryptic digestion remains an external collaborator's
responsibility.
*/
package peptide

import (
	"regexp"

	"github.com/xwalk-go/xwalk"
)

// Expression1 matches a tryptic peptide whose miscleavage, if any,
// falls before the cross-linked lysine.
var Expression1 = regexp.MustCompile(`^[^KR]*[KR]?[^KR]*K[^KR]*[KR]$`)

// Expression2 matches a tryptic peptide whose miscleavage, if any,
// falls after the cross-linked lysine.
var Expression2 = regexp.MustCompile(`^[^KR]*K[^KR]*[KR]?[^KR]*[KR]$`)

// Eligible reports whether seq is a cross-linkable peptide: its length
// falls within [xwalk.MinPeptideLength, xwalk.MaxPeptideLength],
// miscleavages does not exceed xwalk.MaxMiscleavages, and seq matches
// either tryptic expression.
func Eligible(seq string, miscleavages int) bool {
	if len(seq) < xwalk.MinPeptideLength || len(seq) > xwalk.MaxPeptideLength {
		return false
	}
	if miscleavages < 0 || miscleavages > xwalk.MaxMiscleavages {
		return false
	}
	return Expression1.MatchString(seq) || Expression2.MatchString(seq)
}
