// Package mdx writes the MDX dictionary file format: a binary,
// block-structured container pairing an ordered index of headwords with
// compressed HTML-explanation records.
//
// A Writer is built once from a complete headword → explanation mapping
// and a set of WriterOption values, then consumed exactly once by Write:
//
//	w, err := mdx.NewWriter(map[string]string{
//	        "alpha": "<i>alpha</i>",
//	        "beta":  "Letter <b>beta</b>",
//	}, "Greek Letters", "A tiny example dictionary")
//	if err != nil {
//	        log.Fatal(err)
//	}
//
//	f, err := os.Create("greek.mdx")
//	if err != nil {
//	        log.Fatal(err)
//	}
//	defer f.Close()
//
//	if err := w.Write(f); err != nil {
//	        log.Fatal(err)
//	}
//
// Registration codes for a distributed dictionary are generated
// separately with EncryptKey and conventionally saved to a sibling .key
// file next to the .mdx output:
//
//	key := mdx.EncryptKey([]byte("my-dict-key"), []byte("buyer@example.com"))
//	os.WriteFile("greek.key", []byte(key), 0o644)
package mdx

import "github.com/gomdict/mdxwriter/cipher"

// EncryptKey derives the 32-character uppercase hex registration code that
// binds dictKey to email, the same value NewWriter embeds in the header's
// RegCode attribute when both WithEncryptKey and WithUserEmail are set.
// It performs no file I/O; callers that want the conventional sibling
// .key file write the returned string themselves.
func EncryptKey(dictKey, email []byte) string {
	return cipher.EncryptKey(dictKey, email)
}
