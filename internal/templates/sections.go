package templates

import (
	"fmt"
	"strings"

	"sitegen_ai_server/internal/spec"
)

func renderHero(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	headline, err := stringProp(sec, "headline", "Built from your prompt")
	if err != nil {
		return "", err
	}
	sub, err := stringProp(sec, "sub", "Generated in seconds with consistent styling.")
	if err != nil {
		return "", err
	}
	ctaLabel := "Get Started"
	ctaHref := "/contact"
	if cta, ok := sec.Props["cta"].(map[string]any); ok {
		if label, ok := cta["label"].(string); ok && label != "" {
			ctaLabel = label
		}
		if href, ok := cta["href"].(string); ok && href != "" {
			ctaHref = href
		}
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  return (
    <section className="min-h-screen flex items-center justify-center bg-primary text-white">
      <div className="text-center px-4">
        <h1 className="%s font-bold font-heading mb-6">%s</h1>
        <p className="text-xl mb-8 font-body max-w-2xl mx-auto">%s</p>
        <a href="%s" className="inline-block bg-white text-primary px-8 py-3 rounded font-semibold hover:bg-gray-100 transition">
          %s
        </a>
      </div>
    </section>
  );
}
`, name, heroHeadingClass(tokens), jsxEscape(headline), jsxEscape(sub), ctaHref, jsxEscape(ctaLabel)), nil
}

func renderFeatureGrid(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	items, err := stringListProp(sec, "items", []string{"Fast", "Consistent", "Mobile-first"})
	if err != nil {
		return "", err
	}
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = fmt.Sprintf("    { title: %s, description: %s },",
			jsString(item), jsString(item+" by default, on every page."))
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  const features = [
%s
  ];

  return (
    <section className="%s px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">Why Choose Us</h2>
        <div className="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
          {features.map((feature, index) => (
            <div key={index} className="text-center p-6 rounded hover:shadow-lg transition">
              <h3 className="text-xl font-semibold font-heading mb-3 text-foreground">{feature.title}</h3>
              <p className="font-body text-gray-600">{feature.description}</p>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}
`, name, strings.Join(entries, "\n"), sectionPadding(tokens), headingClass(tokens)), nil
}

func renderProductGrid(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	count, err := intProp(sec, "count", 6)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  const products = Array.from({ length: %d }, (_, i) => ({
    title: 'Product ' + (i + 1),
    description: 'A short description of this item.',
  }));

  return (
    <section className="%s px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">Our Products</h2>
        <div className="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
          {products.map((product, index) => (
            <div key={index} className="bg-white p-6 rounded shadow-lg hover:shadow-xl transition">
              <div className="h-48 bg-gray-200 rounded mb-4"></div>
              <h3 className="text-xl font-semibold font-heading mb-3 text-foreground">{product.title}</h3>
              <p className="font-body text-gray-600">{product.description}</p>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}
`, name, count, sectionPadding(tokens), headingClass(tokens)), nil
}

func renderTestimonials(name string, tokens spec.DesignTokens) string {
	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  const testimonials = [
    { quote: 'Absolutely amazing service!', author: 'John Doe', title: 'CEO, Company Inc' },
    { quote: 'Exceeded all expectations.', author: 'Jane Smith', title: 'Marketing Director' },
    { quote: 'Highly recommend to everyone!', author: 'Mike Johnson', title: 'Freelancer' },
  ];

  return (
    <section className="%s px-4 bg-gray-50">
      <div className="max-w-6xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">What Our Clients Say</h2>
        <div className="grid md:grid-cols-3 gap-8">
          {testimonials.map((testimonial, index) => (
            <div key={index} className="bg-white p-6 rounded shadow-lg">
              <p className="font-body text-gray-600 mb-4 italic">"{testimonial.quote}"</p>
              <div className="font-semibold text-foreground">{testimonial.author}</div>
              <div className="text-sm text-gray-500">{testimonial.title}</div>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens))
}

func renderPricing(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	plans, err := stringListProp(sec, "plans", []string{"Starter", "Pro", "Team"})
	if err != nil {
		return "", err
	}
	entries := make([]string, len(plans))
	for i, plan := range plans {
		entries[i] = fmt.Sprintf("    { name: %s, price: '$%d', popular: %t },",
			jsString(plan), 9+i*10, i == 1)
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  const plans = [
%s
  ];

  return (
    <section className="%s px-4 bg-background">
      <div className="max-w-6xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">Choose Your Plan</h2>
        <div className="grid md:grid-cols-3 gap-8">
          {plans.map((plan, index) => (
            <div key={index} className={'bg-white p-8 rounded shadow-lg' + (plan.popular ? ' ring-2 ring-primary' : '')}>
              {plan.popular && (
                <div className="bg-primary text-white px-3 py-1 rounded-full text-sm mb-4 inline-block">Most Popular</div>
              )}
              <h3 className="text-2xl font-bold font-heading mb-4 text-foreground">{plan.name}</h3>
              <div className="text-4xl font-bold text-primary mb-6">
                {plan.price}<span className="text-lg text-gray-500">/mo</span>
              </div>
              <button className="w-full bg-primary text-white py-3 rounded font-semibold hover:opacity-90 transition">
                Get Started
              </button>
            </div>
          ))}
        </div>
      </div>
    </section>
  );
}
`, name, strings.Join(entries, "\n"), sectionPadding(tokens), headingClass(tokens)), nil
}

func renderFAQ(name string, tokens spec.DesignTokens) string {
	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  const faqs = [
    { question: 'What is your service about?', answer: 'We provide solutions tailored to your needs.' },
    { question: 'How much does it cost?', answer: 'We offer flexible pricing plans to suit different budgets.' },
    { question: 'Is there a free trial?', answer: 'Yes, we offer a 14-day free trial with full features.' },
    { question: 'How do I get started?', answer: 'Simply sign up and follow our quick setup guide.' },
    { question: 'Do you offer support?', answer: 'We provide customer support via chat and email.' },
    { question: 'Can I cancel anytime?', answer: 'Yes, you can cancel your subscription at any time.' },
  ];

  return (
    <section className="%s px-4 bg-gray-50">
      <div className="max-w-4xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">Frequently Asked Questions</h2>
        <div className="space-y-4">
          {faqs.map((faq, index) => (
            <details key={index} className="bg-white p-6 rounded shadow">
              <summary className="font-semibold font-heading text-foreground cursor-pointer">{faq.question}</summary>
              <p className="mt-4 font-body text-gray-600">{faq.answer}</p>
            </details>
          ))}
        </div>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens))
}

func renderContactForm(name string, tokens spec.DesignTokens) string {
	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  return (
    <section className="%s px-4 bg-gray-50">
      <div className="max-w-2xl mx-auto">
        <h2 className="%s font-bold font-heading text-center mb-16 text-foreground">Get In Touch</h2>
        <form className="bg-white p-8 rounded shadow-lg">
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Name</label>
            <input type="text" className="w-full px-4 py-2 border border-gray-300 rounded focus:outline-none focus:border-primary" placeholder="Your Name" />
          </div>
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Email</label>
            <input type="email" className="w-full px-4 py-2 border border-gray-300 rounded focus:outline-none focus:border-primary" placeholder="your@email.com" />
          </div>
          <div className="mb-6">
            <label className="block text-sm font-semibold mb-2 text-foreground">Message</label>
            <textarea rows="4" className="w-full px-4 py-2 border border-gray-300 rounded focus:outline-none focus:border-primary" placeholder="Your message..."></textarea>
          </div>
          <button type="submit" className="w-full bg-primary text-white py-3 rounded font-semibold hover:opacity-90 transition">
            Send Message
          </button>
        </form>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens))
}

func renderRichText(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	heading, err := stringProp(sec, "heading", "About Us")
	if err != nil {
		return "", err
	}
	body, err := stringProp(sec, "text", "We are dedicated to providing exceptional services and solutions to our clients. Our team works to ensure your success and satisfaction.")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  return (
    <section className="%s px-4 bg-background">
      <div className="max-w-4xl mx-auto">
        <h2 className="%s font-bold font-heading mb-8 text-foreground">%s</h2>
        <p className="font-body text-gray-600 leading-relaxed">%s</p>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens), jsxEscape(heading), jsxEscape(body)), nil
}

func renderCTA(name string, sec spec.Section, tokens spec.DesignTokens) (string, error) {
	headline, err := stringProp(sec, "headline", "Ready to Get Started?")
	if err != nil {
		return "", err
	}
	label, err := stringProp(sec, "label", "Start Now")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  return (
    <section className="%s px-4 bg-primary text-white">
      <div className="max-w-4xl mx-auto text-center">
        <h2 className="%s font-bold font-heading mb-6">%s</h2>
        <a href="/contact" className="inline-block bg-white text-primary px-8 py-4 rounded font-semibold text-lg hover:bg-gray-100 transition">
          %s
        </a>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens), jsxEscape(headline), jsxEscape(label)), nil
}

// renderGeneric is the default arm for section types without a dedicated
// template.
func renderGeneric(name string, sec spec.Section, tokens spec.DesignTokens) string {
	return fmt.Sprintf(`import React from 'react';

export default function %s() {
  return (
    <section className="%s px-4 bg-background">
      <div className="max-w-4xl mx-auto text-center">
        <h2 className="%s font-bold font-heading mb-8 text-foreground">%s Section</h2>
        <p className="font-body text-gray-600">This is a %s section. Content coming soon.</p>
      </div>
    </section>
  );
}
`, name, sectionPadding(tokens), headingClass(tokens), jsxEscape(string(sec.Type)), jsxEscape(strings.ToLower(string(sec.Type))))
}

// jsxEscape keeps embedded text from breaking out of JSX markup.
func jsxEscape(s string) string {
	r := strings.NewReplacer("<", "&lt;", ">", "&gt;", "{", "&#123;", "}", "&#125;")
	return r.Replace(s)
}

// jsString renders a Go string as a single-quoted JS literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}
