package main

import (
	"context"

	"github.com/yeqown/kbavl"
)

type kbContextKeyType uint

var kbContextKey kbContextKeyType = 0

func contextWithKB(ctx context.Context, kb *kbavl.KnowledgeBase) context.Context {
	return context.WithValue(ctx, kbContextKey, kb)
}

func kbFromContext(ctx context.Context) *kbavl.KnowledgeBase {
	v := ctx.Value(kbContextKey)
	if v == nil {
		panic("no knowledge base in context")
	}

	return v.(*kbavl.KnowledgeBase)
}
