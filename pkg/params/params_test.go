package params_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hazardlab/groundmotion/pkg/params"
)

var _ = Describe("NumericParameter", func() {
	Context("with an absent value", func() {
		It("should fail when required", func() {
			p := params.NewNumeric("mag", true)
			_, _, err := p.Check(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, params.ErrMissingParameter)).To(BeTrue())

			var missing *params.MissingParameterError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Param).To(Equal("mag"))
		})

		It("should resolve to the declared default when optional", func() {
			p := params.NewNumeric("v_s30", false, params.Default(760))
			v, diags, err := p.Check(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(v).To(Equal(760.0))
		})

		It("should stay unset when optional without a default", func() {
			p := params.NewNumeric("depth_tor", false)
			v, diags, err := p.Check(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(v).To(BeNil())
		})
	})

	Context("with a value inside the recommended limits", func() {
		It("should produce no diagnostics", func() {
			p := params.NewNumeric("mag", true, params.Bounds(4, 8))
			v, diags, err := p.Check(6.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(v).To(Equal(6.5))
		})
	})

	Context("with a value outside the recommended limits", func() {
		It("should warn above the upper limit and keep the value unchanged", func() {
			p := params.NewNumeric("mag", true, params.Bounds(4.0, 8.0))
			v, diags, err := p.Check(9.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(9.0))
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Severity).To(Equal(params.SeverityWarning))
			Expect(diags[0].Param).To(Equal("mag"))
			Expect(diags[0].Message).To(ContainSubstring("mag"))
			Expect(diags[0].Message).To(ContainSubstring("(9)"))
			Expect(diags[0].Message).To(ContainSubstring("(8)"))
		})

		It("should warn below the lower limit", func() {
			p := params.NewNumeric("dist_rup", true, params.Bounds(0, 300))
			v, diags, err := p.Check(-5.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(-5.0))
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Message).To(ContainSubstring("less than"))
		})

		It("should never report both limits for one value", func() {
			// Inverted bounds make both comparisons true; only the lower
			// limit check runs.
			p := params.NewNumeric("x", false, params.Bounds(10, 1))
			_, diags, err := p.Check(5.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(HaveLen(1))
		})
	})

	Context("with integer input", func() {
		It("should coerce to float64", func() {
			p := params.NewNumeric("mag", true)
			v, _, err := p.Check(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(7.0))
		})
	})

	Context("with non-numeric input", func() {
		It("should fail", func() {
			p := params.NewNumeric("mag", true)
			_, _, err := p.Check("seven")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("CategoricalParameter", func() {
	Context("with an absent value", func() {
		It("should fail when required", func() {
			p := params.NewCategorical("mechanism", true, "SS", "NM", "RS")
			_, _, err := p.Check(nil)
			Expect(errors.Is(err, params.ErrMissingParameter)).To(BeTrue())
		})

		It("should resolve to the empty string by default", func() {
			p := params.NewCategorical("region", false, "california", "japan")
			v, _, err := p.Check(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(""))
		})

		It("should resolve to a declared default", func() {
			p := params.NewCategorical("region", false, "california", "japan").WithDefault("california")
			v, _, err := p.Check(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("california"))
		})
	})

	Context("with a value in the options", func() {
		It("should produce no diagnostics", func() {
			p := params.NewCategorical("mechanism", true, "SS", "NM", "RS")
			v, diags, err := p.Check("NM")
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(v).To(Equal("NM"))
		})
	})

	Context("with a value outside the options", func() {
		It("should report error severity when required and list the options", func() {
			p := params.NewCategorical("mechanism", true, "SS", "NM", "RS")
			v, diags, err := p.Check("XX")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("XX"))
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Severity).To(Equal(params.SeverityError))
			Expect(diags[0].Message).To(ContainSubstring("SS, NM, RS"))
		})

		It("should report warning severity when optional", func() {
			p := params.NewCategorical("region", false, "california", "japan")
			v, diags, err := p.Check("taiwan")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("taiwan"))
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Severity).To(Equal(params.SeverityWarning))
		})
	})
})

var _ = Describe("Severity", func() {
	It("should print lowercase names", func() {
		Expect(params.SeverityWarning.String()).To(Equal("warning"))
		Expect(params.SeverityError.String()).To(Equal("error"))
	})
})
