package pk11uri_test

import (
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/pk11uri"
)

var _ = Describe("ParseError", Label("errors"), func() {
	const spacesURI = "pkcs11:object=my cert"

	mustParseErr := func(in string) *pk11uri.ParseError {
		GinkgoHelper()
		m, err := parse(in)
		Expect(m).To(BeNil())
		var perr *pk11uri.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		return perr
	}

	It("unwraps to its taxonomy sentinel", func() {
		perr := mustParseErr(spacesURI)
		Expect(errors.Is(perr, pk11uri.ErrValueGrammar)).To(BeTrue())
		Expect(errors.Is(perr, pk11uri.ErrEnumViolation)).To(BeFalse())
	})

	It("describes the violation on one line", func() {
		perr := mustParseErr(spacesURI)
		Expect(perr.Error()).To(Equal(
			"pkcs11 uri error at 14:21: Invalid component value: " +
				"Appendix A of [RFC3986] specifies component values may not contain empty spaces.",
		))
	})

	It("renders a caret underline beneath the violation span", func() {
		perr := mustParseErr(spacesURI)
		Expect(perr.Render()).To(Equal(
			spacesURI + "\n" +
				strings.Repeat(" ", 14) + strings.Repeat("^", len("my cert")) +
				" Invalid component value: Appendix A of [RFC3986] specifies component values may not contain empty spaces." +
				"\n\nhelp: Replace `my cert` with `my%20cert`.",
		))
	})

	It("renders a single caret for a zero-width span", func() {
		perr := mustParseErr("pkcs11:;type=cert")
		Expect(perr.Start).To(Equal(perr.End))
		Expect(perr.Render()).To(ContainSubstring("\n" + strings.Repeat(" ", 7) + "^ Misplaced path delimiter."))
	})

	DescribeTable("formatting",
		func(format string, expect func(perr *pk11uri.ParseError) string) {
			perr := mustParseErr(spacesURI)
			Expect(fmt.Sprintf(format, perr)).To(Equal(expect(perr)))
		},
		Entry("with %s verb", "%s", func(perr *pk11uri.ParseError) string { return perr.Error() }),
		Entry("with %v verb", "%v", func(perr *pk11uri.ParseError) string { return perr.Error() }),
		Entry("with %+s verb", "%+s", func(perr *pk11uri.ParseError) string { return perr.Render() }),
		Entry("with %+v verb", "%+v", func(perr *pk11uri.ParseError) string { return perr.Render() }),
		Entry("with %q verb", "%q", func(perr *pk11uri.ParseError) string { return fmt.Sprintf("%q", perr.Error()) }),
	)
})
