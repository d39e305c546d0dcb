//go:build !atomicint_noc

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
	register("CChar", func() api.Integer[atomicint.CCharValue] { return new(atomicint.CChar) })
	register("CSchar", func() api.Integer[int8] { return new(atomicint.CSchar) })
	register("CUchar", func() api.Integer[uint8] { return new(atomicint.CUchar) })
	register("CShort", func() api.Integer[int16] { return new(atomicint.CShort) })
	register("CUshort", func() api.Integer[uint16] { return new(atomicint.CUshort) })
	register("CInt", func() api.Integer[int32] { return new(atomicint.CInt) })
	register("CUint", func() api.Integer[uint32] { return new(atomicint.CUint) })
	register("CLong", func() api.Integer[atomicint.CLongValue] { return new(atomicint.CLong) })
	register("CUlong", func() api.Integer[atomicint.CUlongValue] { return new(atomicint.CUlong) })
	register("CLonglong", func() api.Integer[int64] { return new(atomicint.CLonglong) })
	register("CUlonglong", func() api.Integer[uint64] { return new(atomicint.CUlonglong) })
}
