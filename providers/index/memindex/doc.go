// Package memindex provides an in-process, brute-force cosine similarity
// implementation of [index.Index]. It backs tests and database-free setups;
// deployments with a persistent catalog should prefer pgindex, which scales
// past linear scans via pgvector's ANN index.
package memindex
