// Package testingx provides testing helpers and fakes for scaffold packages.
//
// # Overview
//
// testingx contains small utilities to speed up unit tests: a mock logger
// with capture and assertions, an afero filesystem wrapper that injects
// write failures on chosen paths, and assertions for core/errors codes.
//
// # Usage
//
//	logger := testingx.NewMockLogger(t)
//	fsys := testingx.NewFailingFs(afero.NewMemMapFs(), "/work/src/main/java/p2")
//	testingx.AssertError(t, err, errors.CodeInvalidArgument)
//
// # Layer
//
// testingx is used by tests only and depends on core packages.
package testingx
