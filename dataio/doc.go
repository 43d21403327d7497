// SPDX-License-Identifier: MIT

// Package dataio provides the thin I/O layer around the domain: loading a
// kernel matrix from disk in any of the three file formats the reference
// tooling produces, writing derived matrices, generating synthetic Wishart
// datasets, and appending one CSV row per run. It deliberately does not
// implement general-purpose dataset preprocessing (Netflix/MovieLens
// ingestion) — see Dataset.
package dataio
