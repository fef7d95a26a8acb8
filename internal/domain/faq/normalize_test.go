package faq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  Hello World  ", out: "hello world"},
		{name: "removes punctuation", in: "What's, the distance?", out: "what s the distance"},
		{name: "collapses tabs and newlines", in: "leave\t\nbalance", out: "leave balance"},
		{name: "keeps digits", in: "EMP10234!", out: "emp10234"},
		{name: "empty", in: "   ", out: ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.out, Normalize(tc.in), tc.name)
	}
}

func TestTermsDropsStopWordsAndShortTokens(t *testing.T) {
	require.Equal(t, []string{"hra"}, terms("What is HRA?"))
	require.Equal(t, []string{"claim", "travel", "reimbursement"}, terms("How do I claim a travel reimbursement"))
	require.Empty(t, terms("what is it"))
}
