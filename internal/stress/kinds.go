/*
 * Copyright 2025 SREDiag Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stress

import (
	"github.com/srediag/atomicint/api"
	"github.com/srediag/atomicint/pkg/atomicint"
)

func init() {
	register("Int8", func() api.Integer[int8] { return new(atomicint.Int8) })
	register("Uint8", func() api.Integer[uint8] { return new(atomicint.Uint8) })
	register("Int16", func() api.Integer[int16] { return new(atomicint.Int16) })
	register("Uint16", func() api.Integer[uint16] { return new(atomicint.Uint16) })
	register("Int32", func() api.Integer[int32] { return new(atomicint.Int32) })
	register("Uint32", func() api.Integer[uint32] { return new(atomicint.Uint32) })
	register("Int64", func() api.Integer[int64] { return new(atomicint.Int64) })
	register("Uint64", func() api.Integer[uint64] { return new(atomicint.Uint64) })
	register("Int", func() api.Integer[int] { return new(atomicint.Int) })
	register("Uint", func() api.Integer[uint] { return new(atomicint.Uint) })
	register("Uintptr", func() api.Integer[uintptr] { return new(atomicint.Uintptr) })
}
