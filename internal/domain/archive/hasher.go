package archive

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the SHA-256 hex digest of raw conversation text.
// Records store these digests in place of the text itself.
func HashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashAnonymizedPair returns the MD5 hex digest of the anonymized user and
// response texts joined with "|". Used as a correlation key only.
func HashAnonymizedPair(anonymizedUser, anonymizedResponse string) string {
	sum := md5.Sum([]byte(anonymizedUser + "|" + anonymizedResponse))
	return hex.EncodeToString(sum[:])
}
