/*
Package csdb is a minimal in-memory database engine.

A database keeps its records twice: in a chained hash table (package
hashtable) serving point reads, and in an ordered B+ tree index (package
bptree) serving ordered scans. Both structures are single-threaded; a DB
serializes every access with one exclusive lock.

	db, err := csdb.Open(csdb.Config{Fanout: 16, Digest: "xxh64"})
	...
	db.Set("apple", []byte("red"))
	v, ok := db.Get("apple")
	db.Scan("a", "b", func(key string, value []byte) bool {
	    fmt.Printf("%s = %s\n", key, value)
	    return true
	})

Clients may subscribe to change events, which are broadcast for every
successful Set.

Persistence, transactions and removal of keys are not supported.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package csdb

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DBError is an error type for the csdb module
type DBError string

func (e DBError) Error() string {
	return string(e)
}

// ErrClosed is flagged for operations on a database which has been closed.
const ErrClosed = DBError("database is closed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DBError("illegal arguments")
