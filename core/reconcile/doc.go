// Package reconcile rebuilds the codon string behind a translated protein.
// It walks the amino-acid string, consumes nucleotide triplets, and keeps the
// observed codon, confirms it against the genetic-code table, or rescues it
// through IUPAC expansion. It never imports internal/ packages; keep it
// domain-only.
package reconcile
