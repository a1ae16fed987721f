// Package notifications delivers run outcomes via ntfy push notifications.
//
// The default implementation publishes to the topic configured under
// notifications.ntfy_topic and gracefully degrades to a no-op when no topic
// is set, so the runner and daemon never branch on whether notifications are
// enabled.
package notifications
