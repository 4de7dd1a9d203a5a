// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compile

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Context carries the per-compilation correlation id, logger, and
// cancellation signal threaded through all three passes. Each call to
// Compile gets its own Context; nothing here is shared across compilations.
type Context struct {
	ctx context.Context
	ID  uuid.UUID
	log *logrus.Entry
}

// NewContext builds a Context for one compilation. A nil logger falls back
// to logrus's standard logger; a nil ctx disables cancellation checks.
func NewContext(ctx context.Context, logger *logrus.Logger) *Context {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	return &Context{
		ctx: ctx,
		ID:  id,
		log: logger.WithField("compile_id", id.String()),
	}
}

// Log returns the compilation's correlation-tagged log entry.
func (c *Context) Log() *logrus.Entry { return c.log }

// checkCancelled aborts the compilation if the caller's context has been
// cancelled, raised the same way any other compile error is raised.
func (c *Context) checkCancelled() {
	if c.ctx == nil {
		return
	}
	select {
	case <-c.ctx.Done():
		panic(&CompileError{Err: c.ctx.Err()})
	default:
	}
}
