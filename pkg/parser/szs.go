package parser

import (
	"strings"

	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/util"
	"github.com/twistedduck/tptp/pkg/util/source"
	"github.com/twistedduck/tptp/pkg/util/source/lex"
)

// scanSZS scans the comments preceding the first unit of a derivation for an
// SZS header, keeping the first status and the first dataform encountered.
// Unrecognised comments are skipped, and the scan stops at the first token
// which is not a line comment.
func scanSZS(srcfile *source.File, tokens []lex.Token) ast.SZS {
	var szs ast.SZS
	//
	for _, token := range tokens {
		if token.Kind != LINE_COMMENT {
			break
		}
		//
		var (
			start  = token.Span.Start()
			end    = token.Span.End()
			text   = string(srcfile.Contents()[start:end])
			fields = strings.Fields(strings.TrimPrefix(text, "%"))
		)
		//
		if len(fields) == 0 || fields[0] != "SZS" {
			continue
		}
		//
		switch {
		case len(fields) >= 3 && fields[1] == "status":
			if szs.Status.IsEmpty() {
				szs.Status = scanStatus(fields[2])
			}
		case len(fields) >= 4 && fields[1] == "output" && fields[2] == "start":
			if szs.Dataform.IsEmpty() {
				szs.Dataform = scanDataform(fields[3])
			}
		}
	}
	//
	return szs
}

// scanStatus matches a status name against the success and no-success
// vocabularies.
func scanStatus(name string) util.Option[util.Either[ast.Success, ast.NoSuccess]] {
	if status := ast.Extended[ast.Success](name); status.IsStandard() {
		return util.Some(util.Left[ast.Success, ast.NoSuccess](status.Unwrap()))
	}
	//
	if status := ast.Extended[ast.NoSuccess](name); status.IsStandard() {
		return util.Some(util.Right[ast.Success](status.Unwrap()))
	}
	//
	return util.None[util.Either[ast.Success, ast.NoSuccess]]()
}

// scanDataform matches a dataform name against the dataform vocabulary.
func scanDataform(name string) util.Option[ast.Dataform] {
	if dataform := ast.Extended[ast.Dataform](name); dataform.IsStandard() {
		return util.Some(dataform.Unwrap())
	}
	//
	return util.None[ast.Dataform]()
}
