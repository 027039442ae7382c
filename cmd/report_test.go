package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestReportCmd(t *testing.T) {
	testCases := []struct {
		format string
		want   []string
	}{
		{format: "markdown", want: []string{"# Accounts", "| 1 | $1.50 | $0.00 | $1.50 | no |", "## Rejected transactions"}},
		{format: "table", want: []string{"CLIENT", "$2.00"}},
		{format: "html", want: []string{"<h1>Accounts</h1>", "<table>"}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			input := createTempFile(t, "transactions.csv", sampleTransactions)
			output := filepath.Join(t.TempDir(), "report")

			status := execute(t, &reportCmd{}, "-format", tc.format, "-c", "USD", "-o", output, input)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want %v", status, subcommands.ExitSuccess)
			}
			got := readFile(t, output)
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("report does not contain %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestRejectedCmd(t *testing.T) {
	testCases := []struct {
		format string
		want   string
	}{
		{
			format: "json",
			want:   `{"type":"withdrawal","client":2,"tx":5,"amount":3,"reason":"insufficient available funds: cannot withdraw 3, available is 2"}` + "\n",
		},
		{
			format: "markdown",
			want: "# Rejections\n\n" +
				"## Rejected transactions\n\n" +
				"| Tx | Client | Type | Amount | Reason |\n" +
				"|---:|-------:|------|-------:|--------|\n" +
				"| 5 | 2 | withdrawal | 3.0000 | insufficient available funds: cannot withdraw 3, available is 2 |",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			input := createTempFile(t, "transactions.csv", sampleTransactions)
			output := filepath.Join(t.TempDir(), "rejected")

			status := execute(t, &rejectedCmd{}, "-format", tc.format, "-o", output, input)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want %v", status, subcommands.ExitSuccess)
			}
			if got := readFile(t, output); strings.TrimSpace(got) != strings.TrimSpace(tc.want) {
				t.Errorf("output mismatch.\nGot:\n%s\nWant:\n%s", got, tc.want)
			}
		})
	}
}
