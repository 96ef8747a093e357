// Package holidayindex precomputes keyword records for holiday packages: a
// normalized keyword set, a classification against the fixed holiday-type
// taxonomy, and the destinations implied by a fixed gazetteer. The index is
// rebuilt in full batches and consumed by the filter search path.
package holidayindex
