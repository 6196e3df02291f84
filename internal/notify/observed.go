package notify

import "context"

// Observed wraps a Feed and reports every published notification's kind.
type Observed struct {
	Feed
	observe func(kind string)
}

func NewObserved(feed Feed, observe func(kind string)) *Observed {
	return &Observed{Feed: feed, observe: observe}
}

func (o *Observed) Notify(ctx context.Context, n Notification) error {
	if err := o.Feed.Notify(ctx, n); err != nil {
		return err
	}
	if o.observe != nil {
		o.observe(string(n.Kind))
	}
	return nil
}
