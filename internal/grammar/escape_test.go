package grammar_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/pk11uri/internal/grammar"
)

var _ = Describe("Grammar", Label("grammar"), func() {
	DescribeTable("Escape()",
		// region
		func(str string, cb func(byte) bool, expect string) {
			Expect(grammar.Escape(str, cb)).To(Equal(expect))
		},
		EntryDescription(`should convert "%s" to "%[3]s"`),
		// region entries
		Entry(nil, "", nil, ""),
		Entry(nil, "abc-qwe!", nil, "abc-qwe!"),
		Entry(nil, "abc qwe#", nil, "abc%20qwe%23"),
		Entry(nil, "100%", nil, "100%25"),
		Entry(nil, "my%20cert", nil, "my%20cert"),
		Entry(nil, "a b/c", func(c byte) bool { return c == ' ' || c == '/' }, "a%20b%2Fc"),
		Entry(nil, "abc qwe", func(c byte) bool { return false }, "abc qwe"),
		// endregion
		// endregion
	)

	DescribeTable("Unescape()",
		// region
		func(str, expect string) {
			Expect(grammar.Unescape(str)).To(Equal(expect))
		},
		EntryDescription(`should convert "%s" to "%s"`),
		// region entries
		Entry(nil, "", ""),
		Entry(nil, "abc", "abc"),
		Entry(nil, "abc%%", "abc%%"),
		Entry(nil, "abc%ax", "abc%ax"),
		Entry(nil, "abc%E4%b8%96", "abc世"),
		Entry(nil, "%20", " "),
		// endregion
		// endregion
	)

	DescribeTable("IsFullyPctEncoded()",
		// region
		func(str string, expect bool) {
			Expect(grammar.IsFullyPctEncoded(str)).To(Equal(expect))
		},
		EntryDescription(`should report "%s" as %t`),
		// region entries
		Entry(nil, "", false),
		Entry(nil, "%69%95", true),
		Entry(nil, "%69%95%3E%5C%F4%5D%DE%5A", true),
		Entry(nil, "abc", false),
		Entry(nil, "%69a", false),
		Entry(nil, "%6g%95", false),
		Entry(nil, "a%69%95", false),
		// endregion
		// endregion
	)

	DescribeTable("char predicates",
		// region
		func(pred func(byte) bool, chars string, expect bool) {
			for i := 0; i < len(chars); i++ {
				Expect(pred(chars[i])).To(Equal(expect), "char %q", chars[i])
			}
		},
		// region entries
		Entry("path-safe chars", grammar.IsPathSafeChar, "aZ9-._~:[]@!$'()*+,=&", true),
		Entry("path-unsafe chars", grammar.IsPathSafeChar, " #/?|<>^%;\"", false),
		Entry("query-safe chars", grammar.IsQuerySafeChar, "aZ9-._~:[]@!$'()*+,=/?|", true),
		Entry("query-unsafe chars", grammar.IsQuerySafeChar, " #&<>^%\"", false),
		Entry("vendor name chars", grammar.IsVendorAttrNameChar, "aZ9-_", true),
		Entry("non vendor name chars", grammar.IsVendorAttrNameChar, ".~: =", false),
		// endregion
		// endregion
	)
})
