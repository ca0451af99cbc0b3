// Package label finds the OCI image description label in Dockerfile text.
//
// The lookup is a plain pattern search over the raw file contents, not a
// Dockerfile parse: the first `org.opencontainers.image.description = "..."`
// assignment anywhere in the text wins, whether it sits in a LABEL
// instruction, a continuation line, or a comment.
//
// The label key comes from github.com/opencontainers/image-spec so the
// pattern tracks the annotation name defined by the OCI image spec.
package label
