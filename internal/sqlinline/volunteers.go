package sqlinline

// QUpsertVolunteer keys on the unique email index. Status is only set on
// insert; xmax = 0 identifies a freshly inserted row.
const QUpsertVolunteer = `--sql ee05dd5e-cf52-4497-a90c-8ee5ea268acd
insert into volunteers(id, first_name, last_name, email, phone, city, interests, availability, experience, message, status, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text[], $8::text[], $9::text, $10::text, $11::text, now(), now())
on conflict (email) do update set
    first_name = excluded.first_name,
    last_name = excluded.last_name,
    phone = excluded.phone,
    city = excluded.city,
    interests = excluded.interests,
    availability = excluded.availability,
    experience = excluded.experience,
    message = excluded.message,
    updated_at = now()
returning id::text, status, created_at, updated_at, (xmax = 0) as inserted;
`

const QListVolunteers = `--sql a886be34-e44c-4f48-9e09-b79ee66cf869
select id::text, first_name, last_name, email, phone, city, interests, availability, experience, message,
       status, created_at, updated_at
from volunteers
order by created_at desc
limit $1::int;
`

const QUpdateVolunteerStatus = `--sql 4a763ab6-f793-422d-bca6-9e23b0c84c9e
update volunteers
set status = $2::text, updated_at = now()
where email = $1::text;
`
