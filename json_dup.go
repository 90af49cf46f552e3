package datagraph

import (
	"io"

	eng "github.com/reoring/datagraph/internal/engine"
)

// DuplicateKeys scans JSON input and reports every repeated object key as a
// duplicate_key issue without failing the parse. A maxIssues of zero or less
// collects them all.
func DuplicateKeys(data []byte, maxIssues int) (Issues, error) {
	return duplicateKeys(eng.NewBytes(data), maxIssues)
}

// DuplicateKeysReader is DuplicateKeys on a reader.
func DuplicateKeysReader(r io.Reader, maxIssues int) (Issues, error) {
	return duplicateKeys(eng.NewReader(r), maxIssues)
}

func duplicateKeys(src eng.TokenSource, maxIssues int) (Issues, error) {
	var found Issues
	opt := ParseOpt{Strictness: Strictness{OnDuplicateKey: Warn}}
	_, err := ParseJSONWith(src, opt, func(it Issue) {
		if it.Code != CodeDuplicateKey {
			return
		}
		if maxIssues > 0 && len(found) >= maxIssues {
			return
		}
		found = AppendIssues(found, it)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
