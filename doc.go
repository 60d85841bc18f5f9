// Package kbavl indexes a knowledge base of tab-delimited records in an AVL
// tree and answers exact-term lookups.
//
// A record is one line of three tab-separated fields:
//
// |  term  |  statement  |  score  |
//
// e.g. "dog<TAB>Dogs are mammals.<TAB>0.95". The term is the index key.
//
// Records are loaded from a file (plain, gzip or zstd) with LoadRecords or
// through a KnowledgeBase, queries are run one term per line with
// RunQueries. Inserting a term that already exists is silently ignored, so
// the first record for a term wins.
//
// Index is not safe for concurrent use. SyncIndex wraps it with a single
// lock for callers that share one.
package kbavl
