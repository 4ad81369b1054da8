package core

import "regexp"

const packSuffix = "atpack"

// ExtractVersions returns every `<downloadName>.<x.y.z>.atpack` version found
// in page, in page order. Duplicates are kept.
func ExtractVersions(page string, downloadName string) []string {
	re := regexp.MustCompile(regexp.QuoteMeta(downloadName) + `\.(\d+\.\d+\.\d+)\.` + packSuffix)
	var versions []string
	for _, match := range re.FindAllStringSubmatch(page, -1) {
		versions = append(versions, match[1])
	}
	return versions
}
