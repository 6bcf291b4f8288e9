package cmd

import "fmt"

func runFeatures(sess *session) error {
	vec, err := sess.current().Features()
	if err != nil {
		return err
	}
	nonzero := 0
	for _, v := range vec {
		if v != 0 {
			nonzero++
		}
	}
	text := fmt.Sprintf("feature vector: %d value(s), %d nonzero", len(vec), nonzero)
	return printResult(text, vec)
}
