/*
Package index implements indices of tensors, i.e. their identified, named and
dimensioned axes.

Every tensor is described by an ordered set of indices. Two indices of
different tensors are contracted whenever they are recognized as equal, so
identity is everything. An index carries

   id          globally unique identity, drawn from package idgen
   prime level an integer decoration, rendered as trailing ticks
   dimension   the number of values the index ranges over
   raw name    a label without primes or wildcards
   type        an optional category tag, e.g. Link or Site

Two indices are equal if they agree in ID, prime level and raw name. The
dimension is not part of equality. Indices are ordered by dimension, then ID,
then prime level; names are ignored for ordering. Thus indices may be
order-equal, but still unequal.

Tensor network algorithms constantly prime and rename indices to prevent
accidental contraction:

   i, _ := index.New("site", 2)   // site
   i.Prime(1)                     // site'
   i.Rename("site*", "s*'2")      // s'''

Name patterns are described in package namepat.

The default index (the zero value) is null: it has no identity, and all
operations except IsValid will result in errors.

Build with tag 'tnetdebug' to check additional invariants, which are
not checked in normal builds.


BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package index
