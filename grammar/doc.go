// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grammar defines the vocabulary of a layered visualization:
marks, attribute references, visual channels, materials and textures.

Channels, materials and textures are closed sets of types: each interface
has an unexported marker method, so only the types defined here can
implement it, and type switches over them are expected to handle every
case, with a default branch that reports an unsupported variant.
*/
package grammar
